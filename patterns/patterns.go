// Package patterns serves a static catalogue of framework-specific TypeScript
// examples. Pure lookup, no inference.
package patterns

import (
	"sort"
	"strings"

	"github.com/consigcody94/ts-pilot/errors"
)

// catalogue maps framework names to their example text. The content is fixed
// at compile time and never mutated.
var catalogue = map[string]string{
	"react": `// Typed function component with props
interface ButtonProps {
  label: string;
  disabled?: boolean;
  onClick: (event: React.MouseEvent<HTMLButtonElement>) => void;
}

function Button({ label, disabled, onClick }: ButtonProps) {
  return (
    <button disabled={disabled} onClick={onClick}>
      {label}
    </button>
  );
}

// Typed state and effects
function Counter() {
  const [count, setCount] = useState<number>(0);

  useEffect(() => {
    document.title = ` + "`count: ${count}`" + `;
  }, [count]);

  return <button onClick={() => setCount(c => c + 1)}>{count}</button>;
}

// Typed custom hook
function useFetch<T>(url: string): { data: T | null; loading: boolean } {
  const [data, setData] = useState<T | null>(null);
  const [loading, setLoading] = useState(true);

  useEffect(() => {
    fetch(url)
      .then(res => res.json() as Promise<T>)
      .then(json => setData(json))
      .finally(() => setLoading(false));
  }, [url]);

  return { data, loading };
}`,

	"vue": `// Typed component with defineComponent
import { defineComponent, ref, computed, PropType } from "vue";

interface User {
  id: number;
  name: string;
}

export default defineComponent({
  props: {
    user: {
      type: Object as PropType<User>,
      required: true,
    },
    tags: {
      type: Array as PropType<string[]>,
      default: () => [],
    },
  },
  setup(props) {
    const count = ref<number>(0);
    const label = computed(() => ` + "`${props.user.name} (${count.value})`" + `);

    return { count, label };
  },
});

// Typed emits with <script setup>
const emit = defineEmits<{
  (e: "select", id: number): void;
  (e: "close"): void;
}>();`,

	"angular": `// Typed service with dependency injection
@Injectable({ providedIn: "root" })
export class UserService {
  constructor(private http: HttpClient) {}

  getUser(id: number): Observable<User> {
    return this.http.get<User>(` + "`/api/users/${id}`" + `);
  }
}

// Typed component with input/output
@Component({
  selector: "app-user-card",
  templateUrl: "./user-card.component.html",
})
export class UserCardComponent {
  @Input() user!: User;
  @Output() selected = new EventEmitter<number>();

  select(): void {
    this.selected.emit(this.user.id);
  }
}`,

	"express": `// Typed request handlers
import express, { Request, Response, NextFunction } from "express";

interface CreateUserBody {
  name: string;
  email: string;
}

const app = express();

app.post(
  "/users",
  (req: Request<{}, User, CreateUserBody>, res: Response<User>) => {
    const { name, email } = req.body;
    res.status(201).json({ id: 1, name, email });
  }
);

// Typed error-handling middleware
app.use((err: Error, req: Request, res: Response, next: NextFunction) => {
  res.status(500).json({ error: err.message });
});

// Typed route params
app.get("/users/:id", (req: Request<{ id: string }>, res: Response) => {
  const id = Number(req.params.id);
  res.json({ id });
});`,
}

// Frameworks returns the supported framework names, sorted.
func Frameworks() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the example catalogue for framework, case-insensitively.
// Unknown frameworks fail with errors.ErrUnknownFramework naming the valid set.
func Lookup(framework string) (string, error) {
	examples, ok := catalogue[strings.ToLower(framework)]
	if !ok {
		return "", errors.Wrapf(errors.ErrUnknownFramework,
			"%q (supported: %s)", framework, strings.Join(Frameworks(), ", "))
	}
	return examples, nil
}
